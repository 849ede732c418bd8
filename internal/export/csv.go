package export

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"kas-dashboard-svc/internal/aggregate"
)

// WriteCSV writes the recap as comma separated UTF-8. The member name and the
// payment total are always quoted; status cells and counters never need to be.
func WriteCSV(w io.Writer, r aggregate.Rekapan) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(Header(r.Periodes), ",") + "\n"); err != nil {
		return err
	}

	for _, rw := range rows(r) {
		fields := make([]string, 0, len(rw.cells)+4)
		fields = append(fields, quote(rw.name))
		fields = append(fields, rw.cells...)
		fields = append(fields,
			strconv.Itoa(rw.paidCount),
			strconv.Itoa(rw.unpaid),
			quote(rw.totalPaid),
		)
		if _, err := bw.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// BuildCSV renders the recap into memory
func BuildCSV(r aggregate.Rekapan) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
