package extract

import (
	"context"
	"database/sql"
	"math"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/dm-hansen/enrollnet"
)

// Open opens and pings the database. 'driver' is "mysql" or "sqlite".
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't open %s database", driver)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "Can't connect to %s database", driver)
	}

	return db, nil
}

// Run executes 'query' and converts every returned row into a Datum, according to 'fields'. Every
// field's column must be among the query's columns; other columns are ignored. Inputs and
// outputs are laid out in the order of 'fields'.
func Run(ctx context.Context, db *sql.DB, query string, fields []Field) (*enrollnet.Data, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't run query")
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrapf(err, "Can't get columns of query")
	}

	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[strings.ToLower(c)] = i
	}

	positions := make([]int, len(fields))
	var numIn, numOut int
	for i, f := range fields {
		p, ok := index[strings.ToLower(f.Column)]
		if !ok {
			return nil, errors.Errorf("Column %q is not returned by the query", f.Column)
		}
		positions[i] = p

		if f.Kind == Target {
			numOut++
		} else {
			numIn += f.width()
		}
	}

	values := make([]sql.NullString, len(cols))
	dest := make([]interface{}, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	var ds []enrollnet.Datum
	for rows.Next() {
		if err = rows.Scan(dest...); err != nil {
			return nil, errors.Wrapf(err, "Can't scan row %d", len(ds))
		}

		d := enrollnet.Datum{
			Inputs:  make([]float64, 0, numIn),
			Outputs: make([]float64, 0, numOut),
		}
		for i, f := range fields {
			v := values[positions[i]]
			if f.Kind == Target {
				d.Outputs = append(d.Outputs, target(f, v))
			} else {
				d.Inputs = append(d.Inputs, f.inputs(v)...)
			}
		}
		ds = append(ds, d)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "Can't read rows of query")
	} else if len(ds) == 0 {
		return nil, errors.Errorf("Query returned no rows")
	}

	return enrollnet.NewData(ds)
}

func (f Field) inputs(v sql.NullString) []float64 {
	switch f.Kind {
	case Categorical:
		vs := make([]float64, len(f.Categories))
		if !v.Valid {
			for i := range vs {
				vs[i] = f.Missing
			}
			return vs
		}

		s := strings.TrimSpace(v.String)
		for i, c := range f.Categories {
			if s == c {
				vs[i] = 1
			}
		}
		return vs
	default:
		if !v.Valid {
			return []float64{f.Missing}
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64)
		if err != nil || math.IsNaN(x) {
			return []float64{f.Missing}
		}

		if f.Divisor != 0 {
			x /= f.Divisor
		}
		return []float64{math.Min(x, 1)}
	}
}

func target(f Field, v sql.NullString) float64 {
	if v.Valid && strings.TrimSpace(v.String) == f.Positive {
		return 1
	}
	return 0
}
