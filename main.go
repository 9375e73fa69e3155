package main

import (
	_ "embed"

	"github.com/edgarlab/edgar/cmd"
	"github.com/edgarlab/edgar/cmd/db"
)

var version = "devel"

//go:embed db/schema.sql
var schemaSQL string

func init() {
	db.SchemaSQL = schemaSQL
}

func main() {
	cmd.Execute(version)
}
