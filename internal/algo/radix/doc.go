// Package radix converts signed integer literals between binary, octal,
// decimal, and hexadecimal.
//
// Every conversion pivots through decimal: the source literal is parsed by
// positional-weight summation into an int64, then rendered into the target
// base by repeated division. Sign is handled outside the digit conversion,
// and hex input is case-insensitive.
package radix
