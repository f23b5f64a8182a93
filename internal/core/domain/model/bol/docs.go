// Package bol contains the Bill of Lading workflow aggregate.
//
// A Submission is created when a driver submits delivery paperwork and moves
// through broker review to invoice generation and delivery. The Status state
// machine only advances forward through the stage sequence or terminates in
// Rejected; a submission carries at most one invoice for its lifetime.
package bol
