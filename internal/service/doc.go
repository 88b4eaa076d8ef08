// Package service contains application services that orchestrate domain
// logic, stores, and external providers into complete use cases.
package service
