// Command extract_data runs a SQL query and writes its rows as a training data file.
//
// Usage:
//
//	extract_data <query-file> <fields-file> <output-data-file>
//
// The database is given by the environment (or a .env file): EXTRACT_DRIVER is "mysql" (the
// default) or "sqlite", and EXTRACT_DSN the data source name. For mysql, the DSN can instead be
// built from DB_USER, DB_PASSWORD, DB_HOST, DB_PORT and DB_NAME.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/dm-hansen/enrollnet/cliutils"
	"github.com/dm-hansen/enrollnet/extract"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := cliutils.CheckArgs(args, "<query-file>", "<fields-file>", "<output-data-file>"); err != nil {
		return cliutils.ExitCode(err, stderr)
	}

	return cliutils.ExitCode(extractData(context.Background(), args[1], args[2], args[3], stdout), stderr)
}

func extractData(ctx context.Context, queryPath, fieldsPath, outPath string, stdout io.Writer) error {
	if err := cliutils.LoadEnv(); err != nil {
		return err
	}
	dbc, err := cliutils.ReadDatabase(nil)
	if err != nil {
		return err
	}

	query, err := os.ReadFile(queryPath)
	if err != nil {
		return errors.Wrapf(err, "Can't read query")
	}
	fields, err := extract.ReadFieldsFile(fieldsPath)
	if err != nil {
		return err
	}

	db, err := extract.Open(ctx, dbc.Driver, dbc.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	d, err := extract.Run(ctx, db, string(query), fields)
	if err != nil {
		return err
	}

	if err = d.WriteFile(outPath); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d rows with %d inputs and %d outputs to %s\n", d.Len(), d.NumInputs(), d.NumOutputs(), outPath)
	return nil
}
