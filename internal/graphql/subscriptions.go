/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package graphql

import (
	"github.com/graphql-go/graphql"
)

func (r *Resolver) subscriptionFields(trackType, statusType *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"currentlyPlayingSong": &graphql.Field{
			Type: trackType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source, nil
			},
			Subscribe: func(p graphql.ResolveParams) (interface{}, error) {
				out := make(chan interface{})
				go func() {
					defer close(out)
					for current := range r.Facade.StreamCurrentTrack(p.Context) {
						select {
						case out <- viewFromCurrent(current):
						case <-p.Context.Done():
							return
						}
					}
				}()
				return out, nil
			},
		},
		"playbackStatus": &graphql.Field{
			Type: statusType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source, nil
			},
			Subscribe: func(p graphql.ResolveParams) (interface{}, error) {
				out := make(chan interface{})
				go func() {
					defer close(out)
					for st := range r.Facade.StreamStatus(p.Context) {
						select {
						case out <- statusView{Status: st.Status, Elapsed: st.Elapsed}:
						case <-p.Context.Done():
							return
						}
					}
				}()
				return out, nil
			},
		},
	}
}
