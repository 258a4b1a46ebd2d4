// Package backends defines the adapter contract for reasoning backends and
// the process-wide registry that selects among them.
//
// Each adapter (groq, mistral, openai) sends a single prompt to its hosted
// service and returns the model's raw textual reply, unwrapped from that
// service's response envelope. Adapters are intentionally thin: no retries,
// no output repair. Interpreting the model's reply as a verdict is the job
// of the verdict package, which also absorbs every adapter failure.
package backends
