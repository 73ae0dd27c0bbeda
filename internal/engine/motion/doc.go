// Package motion computes cursor destinations over buffer content.
//
// Token motions segment the content into words using Unicode word boundary
// rules and skip segments made only of whitespace. Every function returns
// ok == false when there is nowhere to go, which callers treat as a no-op.
package motion
