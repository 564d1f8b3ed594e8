// Package balance rebuilds the Rise of Nations balance table so that units
// carrying OBJ_MASK categories receive the composed modifiers the game no
// longer applies on its own.
//
// The rebuild reads two sources:
//  1. unitrules.xml: every unit and its OBJ_MASK category codes.
//  2. balance.xml: the shipped sparse table of attacker/defender modifiers.
//
// and writes a dense balance.xml where every unit-to-unit cell is the
// product of all modifiers between the two units and their categories, and
// every category row and column is neutral (100).
//
// # Components
//
//   - Pipeline: LoadRules and Rebuild, the pure core shared by every front end.
//   - Service: file and upload rebuilds, rendering, publishing, run history.
//   - Handler: HTTP endpoints for the same operations.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /balance/fix : Rebuild an uploaded balance.xml (optional rules upload, ?publish=true).
//   - POST /balance/diff : Compare an uploaded balance.xml with its rebuilt form.
//   - GET /balance/categories : List the category codes.
//   - GET /balance/runs : List recent rebuilds.
package balance
