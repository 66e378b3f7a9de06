// Package testsupport builds temp-directory configs and fixture season
// directories for package tests.
package testsupport
