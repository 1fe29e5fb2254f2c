// Package plan assembles fitted text placements and preserved elements into
// ordered page plans.
//
// The [Planner] walks the translated units of a page in the reading order
// recorded during extraction, invokes the fit calculator once per unit, and
// merges the results with the page's untouched non-text elements into a
// [PagePlan]. Unit-level problems (degenerate regions, infeasible fits,
// unmappable OCR coordinates) are recorded as [Warning] values and never
// abort the page; only a structurally invalid page descriptor fails a page,
// and even that never derails sibling pages in a batch.
//
// Pages are independent: [Planner.BuildDocumentPlans] fans them out across
// a bounded worker group and restores order by index.
package plan
