// Package analysis derives summary quantities from projection matrices and
// from the time series produced by package population.
//
//   - GrowthRate: dominant eigenvalue λ and stable stage distribution,
//     found by power iteration on the projection kernel.
//   - GrowthRatios: per-step N(t+1)/N(t) of a projected series.
//   - Summarize: totals and overall change of a run.
//
// λ > 1 means the population grows in the long run, λ < 1 that it declines.
// Power iteration needs a primitive matrix (a single dominant eigenvalue);
// periodic Leslie matrices oscillate and are reported as ErrNotConverged.
package analysis
