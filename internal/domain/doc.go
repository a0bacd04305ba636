// Package domain contains the core business entities of the bookshelf:
// books and the authors they belong to. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
