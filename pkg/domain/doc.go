/*
Package domain contains the rendered node model shared by the engine, the
codecs and every host adapter.

It defines the closed set of node variants a host has to understand, the
symbolic and deferred values markup may contain, and the typed errors raised
while rendering. This package is kept pure and free of external dependencies.

# Key Entities

  - Group: a flat, resolved sequence. A Group headed by "object" is a Reference.
  - Template: a normalized [tag, attributes, ...children] node.
  - Surrogate: a lazily expandable placeholder for an object.
  - Token: a symbolic name resolved through a token table.
  - State: the configuration handed to the host along with a Reference.
*/
package domain
