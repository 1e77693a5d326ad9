package editor

// Row is one line of the document. Chars holds the bytes as stored;
// Render holds them as displayed, with tabs expanded to spaces. Render
// must be refreshed with update after every change to Chars.
type Row struct {
	Chars  []byte
	Render []byte
}

func newRow(chars []byte, tabStop int) Row {
	r := Row{Chars: append([]byte(nil), chars...)}
	r.update(tabStop)
	return r
}

// update rebuilds Render from Chars.
func (r *Row) update(tabStop int) {
	tabs := 0
	for _, c := range r.Chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.Chars)+tabs*(tabStop-1))
	for _, c := range r.Chars {
		if c != '\t' {
			render = append(render, c)
			continue
		}
		render = append(render, ' ')
		for len(render)%tabStop != 0 {
			render = append(render, ' ')
		}
	}
	r.Render = render
}

// renderCol maps byte offset cx to its column in Render.
func (r *Row) renderCol(cx, tabStop int) int {
	if cx < 0 {
		cx = 0
	}
	if cx > len(r.Chars) {
		cx = len(r.Chars)
	}
	rx := 0
	for _, c := range r.Chars[:cx] {
		if c == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

func (r *Row) insertChar(at int, c byte, tabStop int) {
	if at < 0 {
		at = 0
	}
	if at > len(r.Chars) {
		at = len(r.Chars)
	}
	r.Chars = append(r.Chars, 0)
	copy(r.Chars[at+1:], r.Chars[at:])
	r.Chars[at] = c
	r.update(tabStop)
}

func (r *Row) deleteChar(at int, tabStop int) {
	if at < 0 || at >= len(r.Chars) {
		return
	}
	r.Chars = append(r.Chars[:at], r.Chars[at+1:]...)
	r.update(tabStop)
}
