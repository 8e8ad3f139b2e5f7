package escrow

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/commitment"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
)

func TestRemittanceLifecycle(t *testing.T) {
	Convey("given a funded remittance", t, func() {
		env := newTestEnv(t)
		preimage := testPreimage(1)
		c := env.derive(t, preimage)
		expiry := remit.AsUnixTime(baseTime.Add(48 * time.Hour))

		_, err := env.engine.Create(env.at(0), env.db, env.funder, &CreateMsg{
			Commitment: c,
			Broker:     env.broker,
			Amount:     100,
			Expiry:     expiry,
		})
		So(err, ShouldBeNil)
		So(env.balance(t, env.funder), ShouldEqual, remit.Amount(900))

		Convey("the broker redeems it before the deadline", func() {
			_, err := env.engine.Release(env.at(time.Hour), env.db, env.broker, &ReleaseMsg{Preimage: preimage})
			So(err, ShouldBeNil)
			So(env.balance(t, env.broker), ShouldEqual, remit.Amount(100))

			Convey("and the funder can no longer reclaim", func() {
				_, err := env.engine.Reclaim(env.at(72*time.Hour), env.db, env.funder, &ReclaimMsg{Commitment: c})
				So(ErrNoFunds.Is(err), ShouldBeTrue)
				So(env.balance(t, env.funder), ShouldEqual, remit.Amount(900))
			})
		})

		Convey("the broker misses the deadline", func() {
			_, err := env.engine.Release(env.at(72*time.Hour), env.db, env.broker, &ReleaseMsg{Preimage: preimage})
			So(errors.ErrExpired.Is(err), ShouldBeTrue)

			Convey("so the funder reclaims the funds", func() {
				_, err := env.engine.Reclaim(env.at(72*time.Hour), env.db, env.funder, &ReclaimMsg{Commitment: c})
				So(err, ShouldBeNil)
				So(env.balance(t, env.funder), ShouldEqual, remit.Amount(1000))
				So(env.balance(t, env.broker), ShouldEqual, remit.Amount(0))

				Convey("after which the broker gets nothing", func() {
					_, err := env.engine.Release(env.at(73*time.Hour), env.db, env.broker, &ReleaseMsg{Preimage: preimage})
					So(ErrNoFunds.Is(err), ShouldBeTrue)
				})
			})
		})

		Convey("an eavesdropper learns the preimage", func() {
			mallory := remittest.NewAddress()
			_, err := env.engine.Release(env.at(time.Hour), env.db, mallory, &ReleaseMsg{Preimage: preimage})
			So(ErrNoFunds.Is(err), ShouldBeTrue)
			So(env.balance(t, mallory), ShouldEqual, remit.Amount(0))
		})
	})
}

func TestCommitmentsAreInstanceBound(t *testing.T) {
	env := newTestEnv(t)
	preimage := testPreimage(1)

	c, err := commitment.Derive(preimage, env.broker, testInstanceID)
	require.NoError(t, err)
	other, err := commitment.Derive(preimage, env.broker, "remit-other")
	require.NoError(t, err)
	require.False(t, c.Equals(other))

	_, err = env.engine.Create(env.at(0), env.db, env.funder, &CreateMsg{
		Commitment: other,
		Broker:     env.broker,
		Amount:     100,
		Expiry:     remit.AsUnixTime(baseTime.Add(48 * time.Hour)),
	})
	require.NoError(t, err)

	// The record was keyed for another instance identity, so on this one
	// the preimage resolves to nothing.
	_, err = env.engine.Release(env.at(time.Hour), env.db, env.broker, &ReleaseMsg{Preimage: preimage})
	require.True(t, ErrNoFunds.Is(err))
}
