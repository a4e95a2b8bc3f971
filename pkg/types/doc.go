// Package types defines the card object model shared by the parser and the
// render pipeline: card elements, actions, the card itself, the enums used
// by both card documents and host configuration, and the warning records a
// render pass accumulates.
//
// Elements and actions are capability-composed. Every element embeds
// BaseElement and satisfies CardElement; containers additionally satisfy
// ContainerBase and Collection, inputs satisfy InputElement. Actions embed
// BaseAction and satisfy ActionElement.
package types
