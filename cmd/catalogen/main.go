// Command catalogen cleans a raw retail CSV export into the product JSON the
// assistant's catalog loader consumes. Rows with missing fields are dropped,
// duplicate (StockCode, Description) pairs keep their first occurrence, and
// rows with non-numeric price or quantity are skipped.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	catalogx "github.com/kittipos/shoptalk/shop/catalog"
)

var requiredColumns = []string{"StockCode", "Description", "UnitPrice", "Quantity"}

func main() {
	inPath := flag.String("in", "data.csv", "input CSV export")
	outPath := flag.String("out", "products.json", "output product JSON")
	flag.Parse()

	products, dropped, err := convert(*inPath)
	if err != nil {
		log.Fatal().Err(err).Str("in", *inPath).Msg("conversion failed")
	}

	raw, err := json.Marshal(products)
	if err != nil {
		log.Fatal().Err(err).Msg("encode products")
	}
	if err := os.WriteFile(*outPath, raw, 0o644); err != nil {
		log.Fatal().Err(err).Str("out", *outPath).Msg("write products")
	}

	log.Info().
		Int("kept", len(products)).
		Int("dropped", dropped).
		Str("out", *outPath).
		Msg("catalog written")
}

func convert(path string) ([]catalogx.Product, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	return clean(f)
}

func clean(r io.Reader) ([]catalogx.Product, int, error) {
	reader := csv.NewReader(latin1Reader(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndexes(header)
	if err != nil {
		return nil, 0, err
	}

	var (
		products []catalogx.Product
		dropped  int
		seen     = map[string]struct{}{}
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read record: %w", err)
		}

		p, ok := parseRow(record, cols)
		if !ok {
			dropped++
			continue
		}

		key := p.StockCode + "\x00" + p.Description
		if _, dup := seen[key]; dup {
			dropped++
			continue
		}
		seen[key] = struct{}{}
		products = append(products, p)
	}
	return products, dropped, nil
}

func columnIndexes(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %s", name)
		}
	}
	return cols, nil
}

func parseRow(record []string, cols map[string]int) (catalogx.Product, bool) {
	field := func(name string) (string, bool) {
		idx := cols[name]
		if idx >= len(record) {
			return "", false
		}
		v := strings.TrimSpace(record[idx])
		return v, v != ""
	}

	code, ok := field("StockCode")
	if !ok {
		return catalogx.Product{}, false
	}
	description, ok := field("Description")
	if !ok {
		return catalogx.Product{}, false
	}
	rawPrice, ok := field("UnitPrice")
	if !ok {
		return catalogx.Product{}, false
	}
	rawQuantity, ok := field("Quantity")
	if !ok {
		return catalogx.Product{}, false
	}

	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return catalogx.Product{}, false
	}
	quantity, err := strconv.Atoi(rawQuantity)
	if err != nil {
		return catalogx.Product{}, false
	}

	return catalogx.Product{
		StockCode:   code,
		Description: description,
		UnitPrice:   price,
		Quantity:    quantity,
	}, true
}

// latin1Reader transcodes an ISO-8859-1 export to UTF-8; each input byte maps
// to the same Unicode code point.
func latin1Reader(r io.Reader) io.Reader {
	return &latin1{src: r}
}

type latin1 struct {
	src io.Reader
	buf []byte
}

func (l *latin1) Read(p []byte) (int, error) {
	if len(l.buf) == 0 {
		raw := make([]byte, len(p)/2+1)
		n, err := l.src.Read(raw)
		if n == 0 {
			return 0, err
		}
		var sb strings.Builder
		sb.Grow(n * 2)
		for _, b := range raw[:n] {
			sb.WriteRune(rune(b))
		}
		l.buf = []byte(sb.String())
	}
	n := copy(p, l.buf)
	l.buf = l.buf[n:]
	return n, nil
}
