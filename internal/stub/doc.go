// Package stub is an in-memory fixture backend implementing the same REST
// contracts as the production API. It exists so the console can be developed
// and demonstrated locally without a real backend; mutations edit the seeded
// data in place, so the fetch/invalidate/re-fetch cycle behaves exactly as
// it does against production.
package stub
