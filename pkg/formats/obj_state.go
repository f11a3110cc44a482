package formats

// objState tracks the object and groups being built while parsing.
type objState struct {
	name     string     // current object name, empty until the first o directive
	groups   []objGroup // named groups of the current object, in creation order
	index    map[string]int
	defaults []objRange // polygons assigned to no named group
	selected []string   // groups chosen by the last g directive
}

func newObjState() *objState {
	return &objState{index: make(map[string]int)}
}

// addPolygon assigns a finished polygon to the selected groups, or to the
// default group when no group is selected.
func (s *objState) addPolygon(poly objRange) {
	if len(s.selected) == 0 {
		s.defaults = append(s.defaults, poly)
		return
	}
	for _, name := range s.selected {
		g := s.group(name)
		g.polygons = append(g.polygons, poly)
	}
}

// selectGroups handles a g directive. Invalid names are dropped and every
// remaining name gets an entry even if no polygon is ever added to it.
func (s *objState) selectGroups(names []string) {
	s.selected = s.selected[:0]
	for _, name := range names {
		if !ValidName(name) {
			continue
		}
		s.group(name)
		s.selected = append(s.selected, name)
	}
}

// group returns the named group of the current object, creating it if needed.
func (s *objState) group(name string) *objGroup {
	i, ok := s.index[name]
	if !ok {
		i = len(s.groups)
		s.index[name] = i
		s.groups = append(s.groups, objGroup{name: name})
	}
	return &s.groups[i]
}

// begin starts a new object context.
func (s *objState) begin(name string) {
	s.name = name
}

// flush publishes the object being built to obj and resets the group state.
// Objects without any group are dropped.
func (s *objState) flush(obj *OBJ) {
	if len(s.defaults) > 0 {
		g := s.group("")
		g.polygons = append(g.polygons, s.defaults...)
	}
	s.selected = nil

	if len(s.groups) > 0 {
		obj.addObject(objObject{name: s.name, groups: s.groups, index: s.index})
	}

	s.groups = nil
	s.index = make(map[string]int)
	s.defaults = nil
}

// addObject stores an object, replacing any earlier object of the same name.
func (o *OBJ) addObject(object objObject) {
	if i, ok := o.index[object.name]; ok {
		o.objects[i] = object
		return
	}
	o.index[object.name] = len(o.objects)
	o.objects = append(o.objects, object)
}
