package gcode

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// DefaultTags reads the MEW "; CTS:1200" comment convention as F1200.
var DefaultTags = map[string]byte{"cts": 'F'}

// A Parser reads GCode one line at a time. A malformed argument value
// drops the word, never the line.
type Parser struct {
	br *bufio.Reader

	// Tags maps lowercase comment-tag keys to word letters.
	Tags map[string]byte
}

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br, Tags: DefaultTags}
	}

	return &Parser{br: bufio.NewReader(r), Tags: DefaultTags}
}

func (p *Parser) Read() (Block, error) {
	for {
		s, err := p.br.ReadString('\n')
		if err == io.EOF && s != "" {
			err = nil
		}
		if err != nil {
			return nil, err
		}

		var comment string
		if idx := strings.IndexByte(s, ';'); idx != -1 {
			comment = s[idx+1:]
			s = s[:idx]
		}

		b := lexWords(s)
		b = append(b, p.tagWords(comment)...)
		if len(b) == 0 {
			continue
		}
		return b, nil
	}
}

func isArgByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// lexWords scans letter+number words; spacing is insignificant. Only
// the first G or M word counts as the code.
func lexWords(s string) Block {
	s = strings.Replace(s, " ", "", -1)
	s = strings.Replace(s, "\t", "", -1)
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)

	var b Block
	var hasCode bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			continue
		}
		j := i + 1
		for j < len(s) && isArgByte(s[j]) {
			j++
		}
		arg, err := strconv.ParseFloat(s[i+1:j], 64)
		i = j - 1
		if err != nil {
			continue
		}
		if c == 'G' || c == 'M' {
			if hasCode {
				continue
			}
			hasCode = true
		}
		b = append(b, Word{W: c, Arg: arg})
	}
	return b
}

// tagWords extracts recognized comma-separated "key:value" pairs from
// a comment, matching keys case-insensitively.
func (p *Parser) tagWords(comment string) Block {
	if comment == "" || len(p.Tags) == 0 {
		return nil
	}
	var b Block
	for _, part := range strings.Split(comment, ",") {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			continue
		}
		w, ok := p.Tags[strings.ToLower(strings.TrimSpace(kv[0]))]
		if !ok {
			continue
		}
		arg, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil {
			continue
		}
		b = append(b, Word{W: w, Arg: arg})
	}
	return b
}
