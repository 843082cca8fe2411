package command

// Tokenize splits a command line into tokens. Separators are spaces and
// tabs. A token that starts with a double quote runs to the closing quote
// and may contain whitespace; the quotes are stripped. An unterminated
// quote runs to the end of the line. Quotes inside an unquoted token have
// no special meaning.
func Tokenize(line string) []string {
	var tokens []string
	i := 0
	for i < len(line) {
		c := line[i]
		if c == ' ' || c == '\t' {
			i++
			continue
		}
		if c == '"' {
			j := i + 1
			for j < len(line) && line[j] != '"' {
				j++
			}
			tokens = append(tokens, line[i+1:j])
			if j < len(line) {
				j++ // consume the closing quote
			}
			i = j
			continue
		}
		j := i
		for j < len(line) && line[j] != ' ' && line[j] != '\t' {
			j++
		}
		tokens = append(tokens, line[i:j])
		i = j
	}
	return tokens
}
