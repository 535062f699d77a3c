/*
Package ports defines the collaborator interfaces of the rendering engine.

These interfaces decouple the interpreter from the token table, the formatter
state and the places token tables are kept, allowing the engine to be driven
by static tables in tests and by shared stores in services.

# Key Interfaces

  - Resolver: maps symbolic tokens to concrete values (the preference table).
  - StateProvider: supplies the state attached to every Reference.
  - TableStore: persists named token tables (e.g., in Redis).
  - Renderer: the surface adapters (HTTP, MCP) drive.
*/
package ports
