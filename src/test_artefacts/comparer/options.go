package comparer

import (
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TimeWithinTolerance compara time.Time com folga de toleranceMs.
func TimeWithinTolerance(toleranceMs int) cmp.Option {
	tolerance := time.Duration(toleranceMs) * time.Millisecond

	return cmp.Comparer(func(x, y time.Time) bool {
		return x.Sub(y).Abs() <= tolerance
	})
}

// TransferRecordTimes ignora os carimbos de tempo de transfer.Record, que dependem do relógio.
func TransferRecordTimes() cmp.Option {
	return cmp.FilterPath(func(p cmp.Path) bool {
		sf, ok := p.Last().(cmp.StructField)
		if !ok {
			return false
		}
		return sf.Name() == "CreatedAt" || sf.Name() == "UpdatedAt"
	}, cmp.Ignore())
}

// IgnoreFieldsFor ignores the named fields of T, wherever T appears in the compared graph.
func IgnoreFieldsFor[T any](fields ...string) cmp.Option {
	var zero T
	return cmpopts.IgnoreFields(zero, fields...)
}
