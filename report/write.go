package report

import (
	"bufio"
	"io"
	"strconv"

	"github.com/Becheler/orca/orcaerr"
)

const opWrite = "report.Write"

// Write emits orbits as text: one line per node, 73 space-separated
// decimal integers per line, in node order, with a trailing newline
// after the last line. Values are formatted with strconv.AppendUint, so
// there is never scientific notation or a leading zero other than the
// literal "0".
func Write(w io.Writer, orbits [][73]uint64) error {
	bw := bufio.NewWriter(w)

	buf := make([]byte, 0, 73*20)
	for _, row := range orbits {
		buf = buf[:0]
		for k, v := range row {
			if k > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendUint(buf, v, 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return orcaerr.Wrapf(opWrite, "writing orbit row: %v", orcaerr.ErrCannotWriteOutput, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return orcaerr.Wrapf(opWrite, "flushing output: %v", orcaerr.ErrCannotWriteOutput, err)
	}
	return nil
}
