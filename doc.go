// Package coinvest computes the gain entitlement of the participants of a real-estate
// co-investment.
//
// The property is bought at a fixed price, its value is projected linearly (or given as an
// external series), and three participants fund it over pre-agreed investment windows:
// Antoine, the controlling party, a new investor, and the other investors who cover
// whatever the plan still requires.
//
// The core functionalities include:
//   - Price Projection: daily price series, interpolation of sparse series and flat
//     continuation past their end.
//   - Contribution Schedule: the contributions of the named participants per window,
//     the plan total, and the derived contributions of the other investors.
//   - Daily Balance Accrual: the cumulative invested balance of every participant, day by day.
//   - Allocation: what each participant receives if the property is sold (SALE), or if the
//     contractual buy-out happens (EXIT).
//
// Every computation is a pure function of immutable inputs, done in the base currency with
// exact decimals. Currency conversion is only for display.
//
// This package serves as the foundational logic for the `civ` command-line tool.
package coinvest
