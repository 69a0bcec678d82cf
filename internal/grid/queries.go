package grid

// Query documents for the GRID central-data and series-state APIs. These
// are fixed strings; the response shapes they select are the wire structs
// in internal/model.

const searchTeamsQuery = `
query SearchTeams($name: String!, $limit: Int!) {
  teams(first: $limit, filter: { name: { contains: $name } }) {
    edges {
      node {
        id
        name
      }
    }
  }
}`

const teamSeriesQuery = `
query TeamRecentSeries($teamId: ID!, $since: String!, $until: String!, $limit: Int!) {
  allSeries(
    first: $limit
    filter: {
      teamIds: { in: [$teamId] }
      startTimeScheduled: { gte: $since, lte: $until }
      types: [ESPORTS]
    }
    orderBy: StartTimeScheduled
    orderDirection: DESC
  ) {
    edges {
      node {
        id
        startTimeScheduled
        title {
          name
          nameShortened
        }
        teams {
          baseInfo {
            id
            name
          }
        }
      }
    }
  }
}`

const seriesStateQuery = `
query SeriesState($id: ID!) {
  seriesState(id: $id) {
    valid
    updatedAt
    format
    started
    finished
    teams {
      name
      won
    }
    draftActions {
      sequenceNumber
      type
      drafter {
        id
      }
      draftable {
        name
      }
    }
    games {
      sequenceNumber
      map {
        name
      }
      teams {
        name
        players {
          name
          character {
            name
          }
          weaponKills {
            weaponName
            count
          }
        }
      }
      segments {
        sequenceNumber
        teams {
          name
          side
          players {
            name
            kills
            headshots
            damageDealt
            damageTaken
            currentArmor
            killAssistsGiven
            killAssistsReceived
            weaponKills {
              weaponName
              count
            }
            objectives {
              type
              completionCount
            }
          }
        }
      }
    }
  }
}`
