// Package commands defines the weightlog CLI and wires dependencies for subcommands.
//
// Commands
//
//   - settings   Show or change start date, start weight and target weight
//   - add        Add the next day's entry
//   - edit       Change the date, weight or notes of an entry
//   - rm         Remove an entry
//   - list       Print entries with their day-over-day change
//   - range      Print the default or a quick date range
//   - trend      Print the fitted trend of weights and changes
//   - bounds     Print the weight chart's y-axis bounds
//   - chart      Render the weight or variance chart to PNG or SVG
//   - export     Write an export file, optionally sealed with a passphrase
//   - import     Replace the dataset from an export file
//   - prefs      Show or toggle guides and trend
//   - serve      Run the local HTTP API
//
// # Implementation
//
// The root command builds the dependency graph (stores, logger, services)
// before any subcommand runs, so handlers share one app context. Entry
// positions on the command line are 1-based, as printed by list.
package commands
