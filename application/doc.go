// Package application provides the executable-level plumbing shared
// by the evoq tools: configuration loading, logging, and helpers for
// moving exchange documents and sealed documents to and from files.
// Tree logic lives in the merkletree package; nothing here inspects
// leaves.
package application
