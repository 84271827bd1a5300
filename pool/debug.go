package pool

import (
	"bufio"
	"fmt"
	"io"
)

// DebugPrint writes the pool header and one line per run:
//
//	BestFitPool, 100 bytes:
//		0, 9, allocated
//		9, 91, free
func (p *Pool) DebugPrint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%sPool, %d bytes:\n", p.strategy, p.size)
	for _, r := range p.runs {
		fmt.Fprintf(bw, "\t%d, %d, %s\n", r.Offset, r.Length, r.state())
	}
	return bw.Flush()
}
