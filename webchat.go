// Package webchat lets you chat with a website from the terminal.
// It crawls a site to a bounded link depth, extracts page content as
// markdown, indexes it into a local vector store, and answers natural
// language questions about the content with conversation history.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, goquery/).
package webchat
