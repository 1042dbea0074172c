// Package packages holds the baked-in dependency sets and reconciles a
// user-requested package list against them so nothing is installed twice.
package packages
