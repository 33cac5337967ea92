// Package api serves the weightlog dataset over a local JSON HTTP API and
// provides a small client for it.
//
// Routes:
//   - GET    /api/dataset            the dataset with derived variances
//   - PUT    /api/settings           partial update of start date/weight and target
//   - POST   /api/entries            add the next day {"weight", "notes"}
//   - PATCH  /api/entries/{index}    set one field {"field", "value"} (0-based index)
//   - DELETE /api/entries/{index}    remove an entry
//   - GET    /api/range?quick=       default or quick date range
//   - GET    /api/view?year=&from=&to=&quick=   chart view model
//   - GET    /api/charts/{kind}.{png|svg}        rendered chart, same filters
//   - GET    /api/export             export file (sealed when X-Passphrase is set)
//   - POST   /api/import             replace the dataset from an export file
//   - GET    /api/prefs, PUT /api/prefs
//
// Errors are returned as {"error": "..."} with a 4xx or 5xx status. Every
// request is logged with its method, path, status, size and duration.
package api
