// Package errkit provides helpers for walking wrapped error chains:
// extracting the root cause, flattening a chain for logging, and checking
// for a concrete error type without declaring a target variable.
package errkit
