package random

func (s *Source) Word() string {
	return s.gen.Word()
}

// Words returns from r[0] to r[1] words separated by space
func (s *Source) Words(r []int) string {
	name := ""
	n := s.Value(r)
	for x := 0; x < n; x++ {
		if x != 0 {
			name += " "
		}
		name += s.Word()
	}
	return name
}

func (s *Source) Paragraph() string {
	return s.gen.Paragraph()
}
