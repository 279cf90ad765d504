// Command tsmaint generates the SQL migration that configures timeseries
// maintenance for schema-manifest tables.
//
// The CLI supports:
//   - generate: expand the maintenance template once per manifest table and
//     write V4__configure_timeseries_maintenance.sql
//   - validate: parse the manifests and template without writing output
//   - config: show effective configuration
//   - version: print version information
//
// tsmaint is typically run at build time. The generated file is applied
// later by the migration runner, ordered by its V4__ version prefix; the
// generator itself never connects to a database.
package main

func main() {
	Execute()
}
