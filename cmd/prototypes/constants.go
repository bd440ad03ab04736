package main

// Output file permissions for --output.
const outputFileMode = 0o644

// Width of the prompt id column in list output.
const promptColumnWidth = 40
