// Package registration turns raw user input into a RegisteredUser by running
// independent field validators through the rop algebra, so a rejected user
// sees every reason at once.
//
// Validation is Success(ctor) applied to the id check, then to the email
// checks (contains "@" and then "gmail"), then to the age checks (millennial
// or gen x).
package registration
