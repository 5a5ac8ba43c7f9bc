// Package filesystem provides the filesystem seam shared by the pipeline
// configuration loader and the repository inspector so both can be exercised
// against temporary directories or in-memory fakes.
package filesystem
