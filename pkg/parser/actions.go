package parser

import (
	"github.com/arthur-debert/cardrender/pkg/types"
)

func parseOpenURLAction(p *Props) (types.ActionElement, error) {
	return types.NewOpenURLAction("", p.RequiredString("url")), nil
}

func parseSubmitAction(p *Props) (types.ActionElement, error) {
	a := types.NewSubmitAction("")
	a.Data = p.Any("data")
	if v := p.String("associatedInputs"); v != "" {
		a.AssociatedInputs = v
	}
	return a, nil
}

func parseExecuteAction(p *Props) (types.ActionElement, error) {
	a := types.NewExecuteAction("", p.String("verb"))
	a.Data = p.Any("data")
	if v := p.String("associatedInputs"); v != "" {
		a.AssociatedInputs = v
	}
	return a, nil
}

func parseShowCardAction(p *Props) (types.ActionElement, error) {
	obj := p.Object("card")
	if obj == nil {
		p.ctx.AddWarning(types.WarnRequiredPropertyMissing, "Required property card missing on Action.ShowCard")
		return types.NewShowCardAction("", types.NewCard("")), nil
	}
	card, err := p.ctx.parseCard(obj)
	if err != nil {
		return nil, err
	}
	return types.NewShowCardAction("", card), nil
}

func parseToggleVisibilityAction(p *Props) (types.ActionElement, error) {
	a := types.NewToggleVisibilityAction("")
	for _, item := range p.Array("targetElements") {
		switch t := item.(type) {
		case string:
			a.Targets = append(a.Targets, types.ToggleTarget{ElementID: t})
		default:
			obj, ok := asObject(item)
			if !ok {
				p.invalid("targetElements", item, "an element id or target object")
				continue
			}
			tp := newProps(p.ctx, obj, "TargetElement")
			target := types.ToggleTarget{ElementID: tp.RequiredString("elementId")}
			if tp.Has("isVisible") {
				visible := tp.Bool("isVisible", true)
				target.IsVisible = &visible
			}
			a.Targets = append(a.Targets, target)
		}
	}
	return a, nil
}
