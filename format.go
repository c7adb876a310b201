package scaffold

// Format renders a raw sequence as FASTA text: a ">"+header line followed by
// the sequence body broken into width-sized blocks.
//
// With width > 0 the body is emitted as ceil(len(seq)/width) blocks, every
// block newline-terminated, the final partial block included. With
// width <= 0 the body is emitted verbatim on a single line with no trailing
// newline. The asymmetry between the branches is long-standing observed
// behavior that downstream consumers depend on, so both branches keep it.
func Format(header string, seq []byte, width int) []byte {
	size := len(header) + len(seq) + 2
	if width > 0 {
		size += len(seq)/width + 1
	}

	out := make([]byte, 0, size)
	out = append(out, '>')
	out = append(out, header...)
	out = append(out, '\n')

	if width <= 0 {
		return append(out, seq...)
	}

	for len(seq) > width {
		out = append(out, seq[:width]...)
		out = append(out, '\n')
		seq = seq[width:]
	}
	if len(seq) > 0 {
		out = append(out, seq...)
		out = append(out, '\n')
	}
	return out
}
