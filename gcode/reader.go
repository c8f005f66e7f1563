package gcode

import (
	"bytes"
	"io"
)

type Reader interface {
	Read() (Block, error)
}

// BlocksReader is a Reader over a fixed slice.
type BlocksReader struct {
	Blocks []Block
	n      int
}

func (b *BlocksReader) Read() (Block, error) {
	if b.n == len(b.Blocks) {
		return nil, io.EOF
	}

	b.n++
	return b.Blocks[b.n-1], nil
}

// ReadAll drains r, preserving block order.
func ReadAll(r Reader) ([]Block, error) {
	var blocks []Block
	for {
		b, err := r.Read()
		if err == io.EOF {
			return blocks, nil
		}
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
}

func Parse(data string) ([]Block, error) {
	return ReadAll(NewParser(bytes.NewBufferString(data)))
}

func MustParse(data string) []Block {
	b, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return b
}
