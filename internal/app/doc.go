// Package app wires application dependencies for the CLI.
//
// It builds the file stores, the logger and the tracker, prefs and chart
// services from Config, exposing them via the App struct for commands to use.
package app
