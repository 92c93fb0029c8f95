package leveldata

import (
	"strings"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="23" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="10">
 <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="320" width="480" height="32"/>
  <object id="2" x="520" y="288" width="120" height="64"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="200" y="280">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="4" x="40" y="280">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Enemies">
  <object id="5" name="slime" x="300" y="296">
   <properties>
    <property name="maxHealth" type="int" value="30"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Collectibles">
  <object id="6" type="coin" x="100" y="260"><point/></object>
  <object id="7" type="life" x="140" y="260">
   <properties>
    <property name="scoreValue" type="int" value="500"/>
   </properties>
   <point/>
  </object>
  <object id="8" x="180" y="260"><point/></object>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	level, err := Load(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if level.Name != "test" {
		t.Errorf("Name: got %q, want %q", level.Name, "test")
	}
	if level.Width != 640 || level.Height != 368 {
		t.Errorf("size: got %dx%d, want 640x368", level.Width, level.Height)
	}
	if len(level.Ground) != 2 {
		t.Fatalf("Ground: got %d rects, want 2", len(level.Ground))
	}
	if got := level.Ground[1]; got != (Rect{X: 520, Y: 288, W: 120, H: 64}) {
		t.Errorf("Ground[1]: got %+v", got)
	}

	if len(level.PlayerSpawns) != 2 {
		t.Fatalf("PlayerSpawns: got %d, want 2", len(level.PlayerSpawns))
	}
	if level.PlayerSpawns[0].X != 40 || level.PlayerSpawns[0].Index != 0 {
		t.Errorf("first spawn: got %+v, want index 0 at x=40", level.PlayerSpawns[0])
	}

	if len(level.Enemies) != 1 || level.Enemies[0].MaxHealth != 30 || level.Enemies[0].Name != "slime" {
		t.Errorf("Enemies: got %+v", level.Enemies)
	}

	wantKinds := []string{KindCoin, KindLife, KindCoin}
	if len(level.Collectibles) != len(wantKinds) {
		t.Fatalf("Collectibles: got %d, want %d", len(level.Collectibles), len(wantKinds))
	}
	for i, k := range wantKinds {
		if level.Collectibles[i].Kind != k {
			t.Errorf("Collectibles[%d].Kind: got %q, want %q", i, level.Collectibles[i].Kind, k)
		}
	}
	if level.Collectibles[1].ScoreValue != 500 {
		t.Errorf("life ScoreValue: got %d, want 500", level.Collectibles[1].ScoreValue)
	}
}

func TestLoadRejectsUnknownCollectible(t *testing.T) {
	tmx := strings.Replace(testTMX, `type="coin"`, `type="gem"`, 1)
	fsys := fstest.MapFS{"levels/bad.tmx": {Data: []byte(tmx)}}

	_, err := Load(fsys, "levels/bad.tmx")
	if err == nil || !strings.Contains(err.Error(), `unknown collectible kind "gem"`) {
		t.Errorf("got %v, want unknown collectible kind error", err)
	}
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(testTMX)},
		"levels/a.tmx": {Data: []byte(testTMX)},
	}

	levels, names, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names: got %v, want [a b]", names)
	}
	if levels["a"] == nil || levels["b"] == nil {
		t.Errorf("levels: got %v", levels)
	}
}

func TestLoadAllEmpty(t *testing.T) {
	if _, _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected error for empty directory")
	}
}
