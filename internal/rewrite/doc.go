// Package rewrite asks a language model to rewrite text and delivers the
// answer to the editor as a proposal.
//
// # Clients
//
// A Client turns a system and a user message into replacement text.
// NewClient builds one from a configured model:
//
//   - anythingllm: plain HTTP chat endpoint, request {"message", "mode"}
//     and answer in "textResponse"
//   - openai: OpenAI-compatible chat completions through openai-go
//   - anthropic: the Messages API through anthropic-sdk-go
//
// # Prompts
//
// An inline instruction is paired with DefaultSystemPrompt and the
// target text. A prompt file has [system] and [user] sections; the user
// section may reference the text as {{TEXT}}:
//
//	[system]
//	You are a careful copy editor.
//	[user]
//	Fix the spelling in:
//	{{TEXT}}
//
// # Worker
//
// A Worker runs at most one request at a time in the background. The host
// loop polls it without blocking:
//
//	w := rewrite.NewWorker(client)
//	id, err := w.Submit(ctx, rewrite.Request{Prompt: p, Text: text})
//	...
//	if p, ok := w.Poll(); ok {
//	    // p.Text or p.Err
//	}
//
// Worker satisfies engine.ProposalSource.
package rewrite
