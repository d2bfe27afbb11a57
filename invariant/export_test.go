// SPDX-License-Identifier: MIT

package invariant

// AverageAll exposes the worker-pool averager to the external tests.
var AverageAll = averageAll
