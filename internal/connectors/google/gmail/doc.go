// Package gmail implements the MessageSource port on top of the Gmail
// API. It lists recent schedule notifications by sender and subject
// within a day window and fetches decoded message bodies, preferring
// the first HTML-bearing part.
package gmail
