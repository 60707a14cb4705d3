package nhkeasy

// Fragment is a run of article text with its optional furigana reading.
// A nil Furigana means the page gave no reading element for Text; an empty
// one means the reading element was present but blank.
type Fragment struct {
	Text     string  `json:"text"`
	Furigana *string `json:"furigana,omitempty"`
}

// NewFragment returns a Fragment without a reading.
func NewFragment(text string) Fragment {
	return Fragment{Text: text}
}

// NewRubyFragment returns a Fragment with the given reading.
func NewRubyFragment(text, furigana string) Fragment {
	return Fragment{Text: text, Furigana: &furigana}
}

// Reading returns the furigana and whether a reading element was present.
func (f Fragment) Reading() (string, bool) {
	if f.Furigana == nil {
		return "", false
	}
	return *f.Furigana, true
}

// HasFurigana reports whether the fragment carries a non-empty reading.
func (f Fragment) HasFurigana() bool {
	return f.Furigana != nil && *f.Furigana != ""
}

// String renders the fragment as text(furigana), or just text when the
// reading is absent or blank.
func (f Fragment) String() string {
	if !f.HasFurigana() {
		return f.Text
	}
	return f.Text + "(" + *f.Furigana + ")"
}
