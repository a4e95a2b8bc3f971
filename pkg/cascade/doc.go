// Package cascade resolves visual properties by combining the host
// configuration with per-container state and host style overrides.
//
// Every function here is pure. Renderers call them with the HostConfig
// of the current pass and the container style carried in their render
// arguments:
//
//	gap := cascade.ResolveSpacing(hc, el.Spacing())
//	style, err := cascade.ResolveActionStyle(ctx, action.Style(), false)
//
// Action styles follow a strict ordered cascade; the first match wins.
package cascade
