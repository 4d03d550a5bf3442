// Package common provides the shared result envelope and parameter
// extraction helpers used by every algorithm provider.
//
// Providers receive raw JSON parameters; these helpers coerce them into
// the text literals and base numbers the core expects, and wrap outcomes
// in the standard Result format.
package common
