package events_fx

import (
	"go.uber.org/fx"

	"fotopanel/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.NewEventDispatcher, providePublisher, services.NewSideEffects),
	fx.Invoke(registerSideEffects),
)

func providePublisher(d *services.EventDispatcher) services.EventPublisher {
	return d
}

func registerSideEffects(d *services.EventDispatcher, effects *services.SideEffects) {
	effects.Register(d)
}
