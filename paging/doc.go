// Package paging simulates demand-paging page replacement over a
// fixed-capacity frame set.
//
// A Policy owns the bookkeeping needed to select an eviction victim;
// Simulate replays a page reference string against one policy and records
// every fault, the frame contents after each fault, and the running total.
package paging
