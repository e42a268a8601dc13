// Package exactcalc implements an exact decimal calculator.
//
// Expressions use the four operators + - * / (or × ÷ −), parentheses, and
// decimal numerals such as 12, 0.5 or .25. A minus sign at the start of an
// expression, after another operator, or after an open parenthesis is
// negation; "-2*3" is "(-2)*3" and "8-3-2" is "(8-3)-2".
//
// Evaluation never uses binary floating point. Sums, differences and products
// are exact, so "0.1+0.2" is 0.3. Quotients are rounded to a fixed number of
// digits after the decimal point, 20 unless set with Precision, with halves
// rounded away from zero.
//
// Every error from invalid input carries a Code that callers can switch on;
// see CodeOf.
package exactcalc
