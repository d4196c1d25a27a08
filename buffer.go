package translit

// Buffer is the input buffer state of one text-entry session: the text and
// an insertion point. It drives its engine the way a text box does, i.e.,
// once per inserted character, after the insertion.
//
// Deleting, moving the cursor and assigning text programmatically never
// invoke the engine. A Buffer is not safe for concurrent use.
type Buffer struct {
	engine *Engine
	text   []rune
	cursor int
}

// NewBuffer creates an empty buffer bound to engine.
func NewBuffer(engine *Engine) *Buffer {
	assert(engine != nil, "buffer needs an engine")
	return &Buffer{engine: engine}
}

// Text returns the current buffer content.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Cursor returns the insertion point as a rune offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Insert inserts r at the cursor and then runs the engine once.
// It returns the edit the engine performed, if any.
func (b *Buffer) Insert(r rune) Edit {
	return b.insert([]rune{r})
}

// Paste inserts s at the cursor as a single insertion event: the engine
// runs once, looking at the characters in front of the new cursor.
func (b *Buffer) Paste(s string) Edit {
	if s == "" {
		return Edit{Start: b.cursor}
	}
	return b.insert([]rune(s))
}

// Type inserts the runes of s one key at a time.
func (b *Buffer) Type(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

func (b *Buffer) insert(rr []rune) Edit {
	text := make([]rune, 0, len(b.text)+len(rr))
	text = append(text, b.text[:b.cursor]...)
	text = append(text, rr...)
	text = append(text, b.text[b.cursor:]...)
	cursor := b.cursor + len(rr)
	edit, _ := b.engine.Match(text, cursor)
	b.text, b.cursor = edit.ApplyTo(text)
	return edit
}

// SetText replaces the content without running the engine and puts the
// cursor at the end.
func (b *Buffer) SetText(s string) {
	b.text = []rune(s)
	b.cursor = len(b.text)
}

// Reset clears the buffer.
func (b *Buffer) Reset() {
	b.text = nil
	b.cursor = 0
}

// Backspace deletes the character in front of the cursor.
func (b *Buffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
	return true
}

// Delete deletes the character after the cursor.
func (b *Buffer) Delete() bool {
	if b.cursor == len(b.text) {
		return false
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
	return true
}

// MoveTo sets the cursor. pos must be within [0, Len()].
func (b *Buffer) MoveTo(pos int) {
	assert(pos >= 0 && pos <= len(b.text), "cursor out of range")
	b.cursor = pos
}

// Left moves the cursor one character to the left, if possible.
func (b *Buffer) Left() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// Right moves the cursor one character to the right, if possible.
func (b *Buffer) Right() {
	if b.cursor < len(b.text) {
		b.cursor++
	}
}

// Transliterate types s key by key into a fresh buffer and returns the
// result.
func Transliterate(engine *Engine, s string) string {
	b := NewBuffer(engine)
	b.Type(s)
	return b.Text()
}
