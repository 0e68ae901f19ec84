package client

import (
	"blockdrop/config"
	"blockdrop/proto"
	"blockdrop/tetris"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/eiannone/keyboard"
)

type Client struct {
	engine  engine
	render  renderer
	options *Options
	logger  *slog.Logger
	kbCh    <-chan keyboard.KeyEvent

	column   int
	rotation tetris.Rotation
	message  string
}

type Options struct {
	NoGhost bool
	// Remote plays on the engine server at Config.Address.
	Remote bool
	Config config.Config
}

// New sets up the engine and opens the keyboard. Frames are written to w.
func New(w io.Writer, l *slog.Logger, o *Options) (*Client, error) {
	r, err := newRender(w, l)
	if err != nil {
		return nil, fmt.Errorf("failed to load renderer: %w", err)
	}

	var e engine
	if o.Remote {
		e, err = dialRemote(o.Config.Address, &proto.NewSessionRequest{
			Width:     int32(o.Config.Width),   //nolint:gosec
			Height:    int32(o.Config.Height),  //nolint:gosec
			Preview:   int32(o.Config.Preview), //nolint:gosec
			Generator: o.Config.Generator,
			Seed:      o.Config.Seed,
		}, l)
	} else {
		var opts tetris.Options
		if opts, err = o.Config.GameOptions(); err == nil {
			l.Info("starting local game", slog.Uint64("seed", opts.Seed))
			e, err = newLocalEngine(opts)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	kb, err := keyboard.GetKeys(20)
	if err != nil {
		e.Close() //nolint: errcheck
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	return &Client{
		engine:  e,
		render:  r,
		options: o,
		logger:  l,
		kbCh:    kb,
	}, nil
}

// Start draws the game and handles keys until the player quits.
func (c *Client) Start() {
	defer func() {
		if err := c.engine.Close(); err != nil {
			c.logger.Error("unable to close engine", slog.String("error", err.Error()))
		}
	}()
	c.render.clear()
	c.draw()
	c.listenKB()
}

func (c *Client) listenKB() {
	for {
		event, ok := <-c.kbCh
		if !ok {
			c.logger.Error("Keyboard events channel closed unexpectedly")
			return
		}
		if event.Err != nil {
			c.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
			return
		}
		if event.Key == keyboard.KeyCtrlC {
			return
		}
		c.handle(event)
		c.draw()
	}
}

func (c *Client) handle(event keyboard.KeyEvent) {
	switch {
	case event.Key == keyboard.KeyArrowLeft || event.Rune == 'a':
		c.column = max(c.column-1, 0)
	case event.Key == keyboard.KeyArrowRight || event.Rune == 'd':
		c.column++
	case event.Key == keyboard.KeyArrowUp || event.Rune == 'e':
		c.rotation = c.rotation.Next()
	case event.Rune == 'q':
		c.rotation = c.rotation.Prev()
	case event.Key == keyboard.KeySpace:
		c.drop()
	case event.Rune == 'r':
		c.message = ""
		if err := c.engine.Reset(); err != nil {
			c.logger.Error("unable to reset game", slog.String("error", err.Error()))
			c.message = "unable to reset the game"
		}
		c.render.clear()
	default:
		return
	}
	c.clampColumn()
}

func (c *Client) drop() {
	c.message = ""
	if err := c.engine.Place(c.column, c.rotation); err != nil {
		if errors.Is(err, tetris.ErrGameOver) {
			c.logger.Info("game over")
			return
		}
		c.logger.Error("unable to place piece", slog.String("error", err.Error()))
		c.message = "unable to place the piece"
		return
	}
	c.rotation = tetris.Normal
}

// clampColumn keeps the selected column where the piece fits.
func (c *Client) clampColumn() {
	st, err := c.engine.State()
	if err != nil {
		return
	}
	c.column = min(c.column, maxColumn(st, c.rotation))
}

func (c *Client) draw() {
	st, err := c.engine.State()
	if err != nil {
		c.logger.Error("unable to get game state", slog.String("error", err.Error()))
		return
	}
	c.render.draw(&view{
		State:    st,
		Column:   c.column,
		Rotation: c.rotation,
		NoGhost:  c.options.NoGhost,
		Remote:   c.options.Remote,
		Message:  c.message,
	})
}
