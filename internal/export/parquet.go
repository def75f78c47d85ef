package export

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/bitexhq/bitemetrics/internal/models"
)

// OrderRecord is the flattened order projection written to parquet. Same
// columns as the CSV export.
type OrderRecord struct {
	ID          string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Timestamp   int64   `parquet:"name=timestamp, type=INT64"`
	CustomerID  string  `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	TotalAmount float64 `parquet:"name=total_amount, type=DOUBLE"`
	GuestCount  int32   `parquet:"name=guest_count, type=INT32"`
	Rating      float64 `parquet:"name=rating, type=DOUBLE"`
	ItemCount   int32   `parquet:"name=item_count, type=INT32"`
}

// WriteOrdersParquet writes the flattened order table to a local parquet
// file. Parquet targets local paths only; remote destinations receive the
// CSV and JSON artifacts.
func WriteOrdersParquet(path string, orders []models.Order) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file %s: %w", path, err)
	}

	pw, err := writer.NewParquetWriter(fw, new(OrderRecord), 4)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	pw.RowGroupSize = 128 * 1024 * 1024
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, o := range orders {
		rec := OrderRecord{
			ID:          o.ID,
			Timestamp:   o.Timestamp.Unix(),
			CustomerID:  o.CustomerID,
			TotalAmount: o.TotalAmount,
			GuestCount:  int32(o.GuestCount),
			Rating:      o.Rating,
			ItemCount:   int32(len(o.Items)),
		}
		if err := pw.Write(rec); err != nil {
			return fmt.Errorf("failed to write order %s: %w", o.ID, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalise parquet file: %w", err)
	}
	return fw.Close()
}
