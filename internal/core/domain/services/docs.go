// Package services contains stateless domain services that coordinate
// logic spanning more than one aggregate or value object.
package services
