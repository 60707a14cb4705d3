// Package nhkeasy extracts structured content from NHK News Web Easy
// articles. Article text is broken into tokens: plain fragments, place names
// and personal names, each fragment carrying its furigana reading when the
// page provides one.
//
// This package contains domain types, interfaces and the token classifier.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, bloom/).
package nhkeasy
