// Package simulator produces the synthetic day-ahead dispatch plan of the
// hybrid park.
//
// Each hour is derived independently by four rules applied in a fixed order:
//
//  1. solar generation on a half-sine curve with cloud noise
//  2. market price from hour bands
//  3. firm-commitment dispatch against the contracted export target
//  4. price arbitrage, which replaces the export computed by rule 3
//
// No state carries over between hours. The battery state of charge is never
// accumulated, so rules 3 and 4 may request power regardless of what earlier
// hours already drew.
package simulator
