// Package resolve turns a chosen set of mods into a complete, deduplicated
// install selection. It walks each mod's declared required dependencies to a
// full transitive closure, pulls in external dependencies the caller's
// catalog doesn't know about, and reports which entries ended up with no
// compatible build for the target. One mod's failure never aborts a run;
// every registry error degrades to an entry with no download URL.
package resolve
