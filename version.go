package rurtle

// Version is the library version, shown in the REPL banner.
const Version = "0.3.0"
